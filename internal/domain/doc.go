// Package domain contains the core hosts-file model for eha.
//
// The domain is transport- and persistence-agnostic: parsing, reconciling and
// rendering operate on bytes the caller has already read. It does not depend
// on YAML, the filesystem, or the system clock; infra/adapters map into/from
// these types.
package domain
