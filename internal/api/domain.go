package api

import (
	"github.com/JaimeStill/graph-vis/internal/artifacts"
	"github.com/JaimeStill/graph-vis/internal/network"
	"github.com/JaimeStill/graph-vis/internal/proteins"
	"github.com/JaimeStill/graph-vis/pkg/storage"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Network   network.System
	Proteins  proteins.System
	Artifacts artifacts.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) (*Domain, error) {
	networkSys := network.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	proteinsSys := proteins.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	artifactsSys, err := artifacts.New(
		map[artifacts.Kind]storage.System{
			artifacts.KindSVG: runtime.Stores.SVG,
			artifacts.KindPDB: runtime.Stores.PDB,
			artifacts.KindGBK: runtime.Stores.GBK,
		},
		networkSys,
		runtime.Logger,
	)
	if err != nil {
		return nil, err
	}

	return &Domain{
		Network:   networkSys,
		Proteins:  proteinsSys,
		Artifacts: artifactsSys,
	}, nil
}
