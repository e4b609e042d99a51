// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package sample holds parsers generated from packet.xabin and status.xabin,
// one per error mode. The golang translator tests check that these files
// match a fresh generation.
package sample

//go:generate go run github.com/Helios-vmg/Xabin/cmd compile packet.xabin --target go --mode exceptions --package sample --non-interactive -o packet_gen.go
//go:generate go run github.com/Helios-vmg/Xabin/cmd compile status.xabin --target go --mode status --package sample --non-interactive -o status_gen.go
