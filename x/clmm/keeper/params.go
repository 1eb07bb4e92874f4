package keeper

import (
	"context"

	"github.com/clover-dex/clover/x/clmm/types"
)

// GetParams returns the current module parameters.
func (k *Keeper) GetParams(ctx context.Context) types.Params {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.params
}

// SetParams validates and replaces the module parameters.
func (k *Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	k.mu.Lock()
	k.params = params
	k.mu.Unlock()
	return nil
}
