package wasmoci

import (
	"context"
	"fmt"

	"github.com/aweris/wasmoci/internal/credentials"
	"github.com/aweris/wasmoci/internal/remote"
)

// Login verifies username/password against the registry at rawURL with a
// push-intent probe and, only if the registry accepts them, saves them to the
// credential file at storePath keyed by the URL host.
func Login(ctx context.Context, rawURL, username, password, storePath string, opts ...Option) error {
	o := newOptions(opts)

	u, err := remote.ParseURL(rawURL)
	if err != nil {
		return err
	}
	host := u.Hostname()

	store, err := credentials.Load(storePath)
	if err != nil {
		return err
	}
	rec := credentials.NewRecord(host, username, password)

	reg, err := o.connect(u)
	if err != nil {
		return err
	}
	root, err := remote.RootRepository(u)
	if err != nil {
		return err
	}
	user, pass, err := rec.Credentials()
	if err != nil {
		return err
	}
	if err := reg.Authenticate(ctx, root, user, pass, OperationPush); err != nil {
		return err
	}

	store.Set(rec)
	if err := store.Save(storePath); err != nil {
		return err
	}
	fmt.Fprintf(o.LogOutput, "[login] login succeeded for %s\n", host)
	return nil
}

// Logout removes the saved credentials for rawURL's host.
func Logout(rawURL, storePath string) error {
	u, err := remote.ParseURL(rawURL)
	if err != nil {
		return err
	}
	store, err := credentials.Load(storePath)
	if err != nil {
		return err
	}
	if err := store.Remove(u.Hostname()); err != nil {
		return err
	}
	return store.Save(storePath)
}
