// Package shared holds utilities used across packages that do not belong to
// any specific layer. Currently that is the testutil subpackage with helpers
// for asserting on structured log output.
package shared
