// Package modules defines the studio web module registry.
package modules

import (
	module "github.com/louisbranch/distilling.works/internal/services/web/module"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module
