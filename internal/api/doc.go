// Package api handles incoming HTTP requests for the keyboard catalog. It
// parses and validates query parameters, calls the catalog service and
// shapes the JSON responses the storefront expects.
package api
