// Package wasmoci pushes and pulls WebAssembly modules to and from OCI
// registries and keeps registry logins in a local credential file.
//
// A module is stored as an OCI artifact with an empty JSON config and a single
// layer holding the raw binary. Modules are validated before they are pushed
// and after they are pulled.
//
// Login (credentials are verified before they are saved):
//
//	err := wasmoci.Login(ctx, "https://ghcr.io", "user", token, authFile)
//
// Push and pull:
//
//	user, pass, _ := wasmoci.ResolveCredentials("https://ghcr.io/org/hello:v1", authFile)
//	manifestURL, _ := wasmoci.Push(ctx, "hello.wasm", "https://ghcr.io/org/hello:v1", user, pass)
//	module, _ := wasmoci.Pull(ctx, "https://ghcr.io/org/hello:v1", user, pass)
//
// Image URLs are http or https; the port defaults to 80 or 443 and the tag to
// "latest".
package wasmoci
