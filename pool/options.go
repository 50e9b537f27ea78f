// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

// Option configures a Pool at construction, in the functional-options style
// observed in flock's pool package.
type Option func(*Config)

// WithNumWorkers sets the fixed worker count. Values below 1 are ignored.
func WithNumWorkers(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.NumWorkers = n
		}
	}
}

// WithPanicHandler installs fn as the recovered-panic callback.
func WithPanicHandler(fn func(value any, stack []byte)) Option {
	return func(c *Config) {
		c.PanicHandler = fn
	}
}

// WithPinWorkerThreads enables best-effort OS-thread pinning per worker.
func WithPinWorkerThreads(pin bool) Option {
	return func(c *Config) {
		c.PinWorkerThreads = pin
	}
}
