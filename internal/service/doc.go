// Package service contains the catalog use cases. It turns raw pagination
// input into page requests, orders the count and page queries, and wraps
// store failures with the operation that hit them. It depends on the
// store.CatalogStore interface only, never on a concrete database.
package service
