// Package slicex provides generic slice helpers.
//
// Package: slicex
// Title: Generic Slice Utilities
// Description: GroupBy keeps groups in first-appearance order, which the
//              stratified and cluster samplers rely on for reproducible output
//              from a seeded random source.
// Version: v0.2.0
// Created: 2026-03-05
// Modified: 2026-04-09
package slicex
