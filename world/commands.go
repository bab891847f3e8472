// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

// A CommandQueue collects deferred world mutations. Structural changes
// such as despawning an entity cannot run while views into the world
// are live, so they are queued and applied afterwards with [Apply].
type CommandQueue struct {
	commands []func(World)
}

// Push queues an arbitrary command.
func (q *CommandQueue) Push(cmd func(World)) {
	q.commands = append(q.commands, cmd)
}

// Despawn queues removal of the given entity.
func (q *CommandQueue) Despawn(e Entity) {
	q.Push(func(w World) {
		w.Despawn(e)
	})
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	return len(q.commands)
}

// Apply runs all queued commands in order and empties the queue.
func (q *CommandQueue) Apply(w World) {
	cmds := q.commands
	q.commands = nil
	for _, cmd := range cmds {
		cmd(w)
	}
}
