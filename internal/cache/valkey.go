// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cache keeps assembled page documents in Valkey so published pages
// are served without re-assembling from PostgreSQL. The cache is optional;
// the application runs fine without it, reads just skip straight to the
// database.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// The cache sits on the page read path, so the client timeouts are kept
// tight: a slow cache must never be worse than skipping it entirely.
const (
	dialTimeout    = 2 * time.Second
	commandTimeout = 500 * time.Millisecond
	connectTimeout = 3 * time.Second
)

// ConnectValkey dials the Valkey instance backing the page cache and
// verifies it with a bounded ping.
func ConnectValkey(host, port, password string) (*redis.Client, error) {
	addr := net.JoinHostPort(host, port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  dialTimeout,
		ReadTimeout:  commandTimeout,
		WriteTimeout: commandTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("valkey unreachable at %s: %w", addr, err)
	}

	slog.Info("valkey connected", "addr", addr)
	return client, nil
}
