// Package mongoerror defines the MongoDB server error codes the proxy
// answers with, and builds the error reply documents carrying them.
//
// errorgen.go is generated from error_codes.err; do not edit it by hand.
package mongoerror

//go:generate go run ../../cmd/errcodegen -o errorgen.go error_codes.err
