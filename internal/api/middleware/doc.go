// Package middleware provides HTTP middleware for the API router.
package middleware
