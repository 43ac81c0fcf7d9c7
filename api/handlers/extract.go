// ABOUTME: Extraction handlers exposing the aggregate and per-format entry points
// ABOUTME: Thin callers: each supplies HTML/manifest text plus an optional base URL

package handlers

import (
	"context"
	"net/http"

	"pagemeta-api/core/domain"
	"pagemeta-api/core/extract"

	"github.com/danielgtaylor/huma/v2"
)

// ExtractHandler handles metadata extraction requests
type ExtractHandler struct {
	service *extract.Service
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(service *extract.Service) *ExtractHandler {
	return &ExtractHandler{service: service}
}

// RegisterRoutes registers extraction routes
func (h *ExtractHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "extractAll",
		Method:      http.MethodPost,
		Path:        "/extract",
		Summary:     "Extract all metadata formats",
		Description: "Parses the supplied HTML once and extracts every supported metadata format. Formats that are absent from the document are omitted from the response.",
		Tags:        []string{"Extraction"},
	}, h.ExtractAll)

	huma.Register(api, huma.Operation{
		OperationID: "extractFormat",
		Method:      http.MethodPost,
		Path:        "/extract/{format}",
		Summary:     "Extract one metadata format",
		Description: "Extracts a single metadata format from the supplied HTML.",
		Tags:        []string{"Extraction"},
	}, h.ExtractFormat)

	huma.Register(api, huma.Operation{
		OperationID: "parseManifest",
		Method:      http.MethodPost,
		Path:        "/manifest/parse",
		Summary:     "Parse a web app manifest",
		Description: "Parses manifest JSON fetched by the caller, resolving embedded URLs against the manifest's own URL.",
		Tags:        []string{"Extraction"},
	}, h.ParseManifest)
}

// ExtractInput defines the input for aggregate extraction
type ExtractInput struct {
	Body struct {
		HTML    string `json:"html" doc:"HTML document text to extract from"`
		BaseURL string `json:"base_url,omitempty" doc:"Base URL for resolving relative references"`
	}
}

// ExtractOutput defines the output for aggregate extraction
type ExtractOutput struct {
	Body domain.AggregateResult
}

// ExtractAll handles the POST /extract endpoint
func (h *ExtractHandler) ExtractAll(ctx context.Context, input *ExtractInput) (*ExtractOutput, error) {
	result, err := h.service.ExtractAll(ctx, input.Body.HTML, input.Body.BaseURL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ExtractOutput{Body: *result}, nil
}

// ExtractFormatInput defines the input for single-format extraction
type ExtractFormatInput struct {
	Format string `path:"format" enum:"meta,open_graph,twitter,json_ld,microdata,microformats,rdfa,dublin_core,manifest,oembed,rel_links" doc:"Metadata format to extract"`
	Body   struct {
		HTML    string `json:"html" doc:"HTML document text to extract from"`
		BaseURL string `json:"base_url,omitempty" doc:"Base URL for resolving relative references"`
	}
}

// ExtractFormatOutput wraps one format's result; null when not found
type ExtractFormatOutput struct {
	Body struct {
		Format string      `json:"format" doc:"The requested format"`
		Data   interface{} `json:"data" doc:"Extracted data, or null when the format is absent"`
	}
}

// ExtractFormat handles the POST /extract/{format} endpoint
func (h *ExtractHandler) ExtractFormat(ctx context.Context, input *ExtractFormatInput) (*ExtractFormatOutput, error) {
	htmlText, baseURL := input.Body.HTML, input.Body.BaseURL

	var data interface{}
	var err error
	switch input.Format {
	case "meta":
		data, err = h.service.Meta(htmlText, baseURL)
	case "open_graph":
		data, err = h.service.OpenGraph(htmlText, baseURL)
	case "twitter":
		data, err = h.service.TwitterWithFallback(htmlText, baseURL)
	case "json_ld":
		data, err = h.service.JSONLD(htmlText)
	case "microdata":
		data, err = h.service.Microdata(htmlText, baseURL)
	case "microformats":
		data, err = h.service.Microformats(htmlText, baseURL)
	case "rdfa":
		data, err = h.service.RDFa(htmlText, baseURL)
	case "dublin_core":
		data, err = h.service.DublinCore(htmlText)
	case "manifest":
		data, err = h.service.DiscoverManifest(htmlText, baseURL)
	case "oembed":
		data, err = h.service.OEmbed(htmlText, baseURL)
	case "rel_links":
		data, err = h.service.RelLinks(htmlText, baseURL)
	default:
		return nil, huma.Error404NotFound("unknown format: " + input.Format)
	}
	if err != nil {
		return nil, toHumaError(err)
	}

	out := &ExtractFormatOutput{}
	out.Body.Format = input.Format
	out.Body.Data = data
	return out, nil
}

// ManifestInput defines the input for manifest parsing
type ManifestInput struct {
	Body struct {
		JSON    string `json:"json" doc:"Manifest JSON text fetched by the caller"`
		BaseURL string `json:"base_url,omitempty" doc:"The manifest's own URL, used to resolve embedded URLs"`
	}
}

// ManifestOutput defines the output for manifest parsing
type ManifestOutput struct {
	Body domain.WebAppManifest
}

// ParseManifest handles the POST /manifest/parse endpoint
func (h *ExtractHandler) ParseManifest(ctx context.Context, input *ManifestInput) (*ManifestOutput, error) {
	m, err := h.service.ParseManifest(input.Body.JSON, input.Body.BaseURL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ManifestOutput{Body: *m}, nil
}
