// Package relay is a webhook relay built on the collection engine.
//
// # Overview
//
// A relay listens on POST /hooks/{route}. Each route in the configuration
// names a target URL and the rules that turn an inbound JSON payload into
// the outbound body:
//
//	routes:
//	  - name: orders
//	    target: https://example.com/ingest
//	    token_hash: "$argon2id$v=19$m=65536,t=3,p=2$..."
//	    where:
//	      - { path: status, operator: "=", value: paid }
//	    fields:
//	      id: order.id
//	      skus: order.lines.*.sku
//	    macros: [compact, sort_keys]
//	    format: yaml
//
// The payload is decoded into a collections.Collection[any] with its key
// order intact. [Shape] applies the where clauses and the fields or only
// projection, [ApplyMacros] runs registered collection macros, [Encode]
// serializes the body and [Forwarder] delivers it with retries.
//
// # Configuration
//
// [LoadConfig] reads a YAML file and RELAY_ environment overrides with
// koanf. Nested keys use a double underscore: RELAY_RETRY__ATTEMPTS=5.
//
// # Tokens
//
// Routes with a token_hash require the caller to send the token in the
// X-Relay-Token header or as a Bearer token. Hashes are produced by
// [HashToken] (the relay hash-token command) with bcrypt or Argon2id.
package relay
