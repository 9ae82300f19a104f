package heir

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// ModuleCondition returns the condition under which this extension acts on
// the wallet it is bound to. The derived address is fully determined by the
// wallet reference, so it can be computed before the deployment exists and
// enabled on the wallet by its governance ahead of time.
func ModuleCondition(walletID []byte) weave.Condition {
	return weave.NewCondition("heir", "module", walletID)
}

func loadConf(db gconf.ReadStore) (*Config, error) {
	var conf Config
	if err := gconf.Load(db, "heir", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
