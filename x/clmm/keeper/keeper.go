package keeper

import (
	"sync"

	"cosmossdk.io/log"

	"github.com/clover-dex/clover/x/clmm/types"
)

// Keeper owns the settlement core's state: pools, positions and resting
// limit orders, held in plain keyed stores with deterministic keys.
//
// Concurrency model: every top-level operation against a pool serializes on
// that pool's mutex for its full duration, so concurrent swap and
// add-liquidity calls against the same pool never interleave their
// read-modify-write of price and liquidity. Operations against different
// pools proceed independently. The state mutex guards only map access.
type Keeper struct {
	mu sync.RWMutex

	pools      map[uint64]types.Pool
	poolByPair map[string]uint64
	positions  map[string]types.Position
	orders     map[uint64]types.LimitOrder

	nextPoolID  uint64
	nextOrderID uint64

	poolLocks map[uint64]*sync.Mutex

	params types.Params
	ledger types.Ledger
	clock  types.Clock
	hooks  types.ClmmHooks
	logger log.Logger
}

// Option configures a Keeper at construction time.
type Option func(*Keeper)

// WithParams overrides the default module parameters.
func WithParams(p types.Params) Option {
	return func(k *Keeper) { k.params = p }
}

// WithHooks registers settlement callbacks.
func WithHooks(h types.ClmmHooks) Option {
	return func(k *Keeper) { k.hooks = h }
}

// NewKeeper creates a new clmm Keeper instance wired to the external custody
// and clock collaborators.
func NewKeeper(ledger types.Ledger, clock types.Clock, logger log.Logger, opts ...Option) *Keeper {
	k := &Keeper{
		pools:       make(map[uint64]types.Pool),
		poolByPair:  make(map[string]uint64),
		positions:   make(map[string]types.Position),
		orders:      make(map[uint64]types.LimitOrder),
		nextPoolID:  1,
		nextOrderID: 1,
		poolLocks:   make(map[uint64]*sync.Mutex),
		params:      types.DefaultParams(),
		ledger:      ledger,
		clock:       clock,
		logger:      logger.With("module", "x/"+types.ModuleName),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Logger returns the keeper's structured logger.
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// lockPool returns the mutex serializing operations on one pool record,
// creating it on first use.
func (k *Keeper) lockPool(poolID uint64) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	lock, ok := k.poolLocks[poolID]
	if !ok {
		lock = &sync.Mutex{}
		k.poolLocks[poolID] = lock
	}
	return lock
}
