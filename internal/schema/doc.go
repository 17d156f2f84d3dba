// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schema maps logical custom fields onto the fixed set of physical
// item slots.
//
// Every inventory has the same slot capacity: three slots for each of the
// five type families (short text, long text, number, link, boolean). A slot
// is addressed by a key of the form "<family>_<index>", for example
// "sl_string_1" or "boolean_3". The package validates keys, coerces
// incoming values to the slot family, and defines the display ordering
// used on every read path. It never talks to storage.
package schema
