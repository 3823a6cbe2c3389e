/*
Copyright 2019 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package stats is a wrapper for expvar. It additionally
// exports new types that can be used to track performance.
// It also provides a callback hook that allows a program
// to export the variables using methods other than /debug/vars,
// such as Prometheus (see go/stats/prometheusbackend).
//
// All variables support a String function that is expected to return
// a JSON representation of the variable. Any function named Add will add
// the specified number to the variable.
package stats

import (
	"expvar"
	"sync"
)

// Variable is the minimal interface which each type in this "stats" package
// must implement. When integrating with a monitoring system, the exporter
// needs the help text of a variable as well as its name.
type Variable interface {
	expvar.Var
	Help() string
}

// NewVarHook is the type of a hook to export variables in a different way
type NewVarHook func(name string, v expvar.Var)

type varGroup struct {
	sync.Mutex
	vars       map[string]expvar.Var
	order      []string
	newVarHook []NewVarHook
}

func (vg *varGroup) register(hook NewVarHook) {
	vg.Lock()
	defer vg.Unlock()
	vg.newVarHook = append(vg.newVarHook, hook)
	for _, name := range vg.order {
		hook(name, vg.vars[name])
	}
}

func (vg *varGroup) publish(name string, v expvar.Var) {
	vg.Lock()
	defer vg.Unlock()

	expvar.Publish(name, v)
	vg.vars[name] = v
	vg.order = append(vg.order, name)
	for _, hook := range vg.newVarHook {
		hook(name, v)
	}
}

var defaultVarGroup = varGroup{vars: make(map[string]expvar.Var)}

// Register allows you to register a callback function
// that will be called whenever a new stats variable gets
// created. Variables published before the call are replayed
// to the hook in publication order. This can be used to build
// alternate methods of exporting stats variables.
func Register(nvh NewVarHook) {
	defaultVarGroup.register(nvh)
}

// publish is expvar.Publish+hook. Publishing a name twice panics, like
// expvar.Publish does.
func publish(name string, v expvar.Var) {
	defaultVarGroup.publish(name, v)
}
