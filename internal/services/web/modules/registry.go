package modules

import (
	module "github.com/louisbranch/distilling.works/internal/services/web/module"
	"github.com/louisbranch/distilling.works/internal/services/web/modules/home"
	"github.com/louisbranch/distilling.works/internal/services/web/modules/projects"
	"github.com/louisbranch/distilling.works/internal/services/web/platform/modulehandler"
)

// DefaultModules returns the stable studio module set.
func DefaultModules(deps module.Dependencies) []Module {
	base := modulehandler.NewBase(deps.ResolveLanguage)
	return []Module{
		home.NewWithBase(base),
		projects.NewWithGateway(projects.NewAPIGateway(deps.ProjectClient), base),
	}
}
