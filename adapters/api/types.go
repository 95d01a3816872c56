package api

import (
	"randist/internal/catalog"
	"randist/internal/profiling"
)

// SampleResponse is returned by the sample endpoint
type SampleResponse struct {
	Distribution string            `json:"distribution"`
	Engine       string            `json:"engine"`
	Seed         uint32            `json:"seed"`
	Params       map[string]string `json:"params,omitempty"`
	Count        int               `json:"count"`
	Samples      []float64         `json:"samples"`
}

// ProfileResponse is returned by the profile endpoint
type ProfileResponse struct {
	Engine  string             `json:"engine"`
	Seed    uint32             `json:"seed"`
	Params  map[string]string  `json:"params,omitempty"`
	Profile *profiling.Profile `json:"profile"`
}

// ErrorResponse carries the code and offending parameters of a failure
type ErrorResponse struct {
	Error  string   `json:"error"`
	Code   string   `json:"code"`
	Params []string `json:"params,omitempty"`
}

// CatalogResponse lists the available engines and distributions
type CatalogResponse struct {
	Engines       []string        `json:"engines"`
	Distributions []catalog.Entry `json:"distributions"`
}
