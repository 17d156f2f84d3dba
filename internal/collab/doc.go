// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package collab implements the collaboration channel: a hub that groups
// connections into rooms keyed by inventory id, WebSocket sessions that
// join and leave rooms on behalf of a client, and an optional Redis relay
// that carries room events between server instances.
//
// Delivery is at-most-once. Events for a member whose outbound queue is full
// are dropped, and nothing is persisted or replayed; clients catch up by
// fetching the discussion when they load an inventory. Within one room every
// member observes events in publish order.
package collab
