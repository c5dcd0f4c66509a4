// Package jwt issues and verifies HMAC-SHA256 signed bearer tokens carrying
// identity claims, and provides HTTP middleware that gates protected routes
// on token validity. Token validity is purely computed from the signature and
// expiry; nothing is stored server-side.
package jwt
