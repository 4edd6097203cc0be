package remote

import (
	"bytes"
	"encoding/json"
	"fmt"

	v1 "github.com/google/go-containerregistry/pkg/v1"
	"github.com/google/go-containerregistry/pkg/v1/partial"
	"github.com/google/go-containerregistry/pkg/v1/static"
	"github.com/google/go-containerregistry/pkg/v1/types"
)

var emptyConfig = []byte("{}")

// artifact is a single-layer wasm image: an empty JSON config and the raw
// module as the only layer. It implements partial.CompressedImageCore.
type artifact struct {
	layer       v1.Layer
	annotations map[string]string
}

// NewArtifact wraps module bytes as an OCI image ready for remote.Write.
func NewArtifact(module []byte, annotations map[string]string) (v1.Image, error) {
	a := &artifact{
		layer:       static.NewLayer(module, WasmLayerMediaType),
		annotations: annotations,
	}
	return partial.CompressedToImage(a)
}

func (a *artifact) RawConfigFile() ([]byte, error) { return emptyConfig, nil }

func (a *artifact) MediaType() (types.MediaType, error) { return types.OCIManifestSchema1, nil }

func (a *artifact) RawManifest() ([]byte, error) {
	m, err := a.manifest()
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

func (a *artifact) LayerByDigest(h v1.Hash) (partial.CompressedLayer, error) {
	digest, err := a.layer.Digest()
	if err != nil {
		return nil, err
	}
	if digest != h {
		return nil, fmt.Errorf("layer not found: %s", h)
	}
	return a.layer, nil
}

func (a *artifact) manifest() (*v1.Manifest, error) {
	configDigest, _, err := v1.SHA256(bytes.NewReader(emptyConfig))
	if err != nil {
		return nil, err
	}
	layerDigest, err := a.layer.Digest()
	if err != nil {
		return nil, err
	}
	layerSize, err := a.layer.Size()
	if err != nil {
		return nil, err
	}

	m := &v1.Manifest{
		SchemaVersion: 2,
		MediaType:     types.OCIManifestSchema1,
		Config: v1.Descriptor{
			MediaType: WasmConfigMediaType,
			Size:      int64(len(emptyConfig)),
			Digest:    configDigest,
		},
		Layers: []v1.Descriptor{{
			MediaType: WasmLayerMediaType,
			Size:      layerSize,
			Digest:    layerDigest,
		}},
	}
	if len(a.annotations) > 0 {
		m.Annotations = a.annotations
	}
	return m, nil
}
