// Package codeforces is a minimal client for the public Codeforces API.
// It only fetches a user's submissions; deduplication and classification
// live in the domain package.
package codeforces
