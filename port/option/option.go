// Package option is the functional option plumbing of the configurable collkit functions and contracts.
package option

// Option changes a Config.
type Option[Config any] interface {
	Configure(*Config)
}

// Func adapts a plain function to an Option.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) { fn(c) }

// Defaulter is implemented by a Config whose defaults are not its zero value.
type Defaulter interface {
	Init()
}

// ToConfig makes a Config from its defaults, then applies the options in order.
// Nil options are skipped, so an optional setting can be passed as nil.
func ToConfig[Config any, Opt Option[Config]](opts []Opt) Config {
	var c Config
	if d, ok := any(&c).(Defaulter); ok {
		d.Init()
	}
	for _, opt := range opts {
		if any(opt) == nil {
			continue
		}
		opt.Configure(&c)
	}
	return c
}
