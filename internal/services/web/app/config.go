package app

import module "github.com/louisbranch/distilling.works/internal/services/web/module"

// Config captures the composition inputs for the studio root handler.
type Config struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}
