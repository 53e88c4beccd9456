// Package shared holds code used across packages that belongs to no single
// layer. Its testutil subpackage carries the dataset fixtures and log capture
// the analyzer, service and server tests share.
package shared
