// Package http exposes the quoting service over a chi router.
//
// Three endpoints are served: customer creation, vehicle registration and
// quote generation. Every response, success or error, carries a JSON body.
// Unknown paths and unsupported methods are indistinguishable to callers:
// both answer 404 with {"error": "Endpoint not found"}.
package http
