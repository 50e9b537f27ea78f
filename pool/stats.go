// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import "code.hybscloud.com/atomix"

// Stats is a point-in-time snapshot of a Pool's counters, grounded on
// flock's pool.Stats shape — spec.md's thread pool has no stats surface of
// its own, but this is carried in as a supplemented feature (DESIGN.md).
type Stats struct {
	Submitted int64
	Completed int64
	Failed    int64
	Running   int64
}

type statsStore struct {
	submitted atomix.Int64
	completed atomix.Int64
	failed    atomix.Int64
	running   atomix.Int64
}

func (s *statsStore) get() Stats {
	return Stats{
		Submitted: s.submitted.LoadAcquire(),
		Completed: s.completed.LoadAcquire(),
		Failed:    s.failed.LoadAcquire(),
		Running:   s.running.LoadAcquire(),
	}
}
