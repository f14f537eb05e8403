package tui

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")

// ErrMissingCartService is returned when the cart service is not provided.
var ErrMissingCartService = errors.New("tui: cart service is required")

// ErrMissingLeadService is returned when the lead service is not provided.
var ErrMissingLeadService = errors.New("tui: lead service is required")
