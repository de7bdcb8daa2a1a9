// Package service provides the request-facing business logic for
// managing tasks under per-owner ownership constraints.
package service
