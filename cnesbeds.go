// Package cnesbeds collects hospital bed-availability tables published by
// the CNES national health-facility registry, one paginated page set per
// federated unit (UF), and assembles them into a normalized dataset
// exportable to common file formats or a SQL sink.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or role (e.g. http/, goquery/, sqlite/).
package cnesbeds
