// Package domain contains the catalog entities (keyboards, their variants and
// comparison rows), the pagination value object and the validation errors
// shared by the service and API layers. It has no infrastructure dependencies.
package domain
