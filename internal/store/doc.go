// Package store defines the persistence contracts for the keyboard catalog.
// Implementations live under internal/platform; the service layer only sees
// the CatalogStore interface and the data access errors declared here.
package store
