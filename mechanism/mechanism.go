//
// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package mechanism contains the randomization mechanisms that perturb
// true values before collection.
//
// Every mechanism keeps the conditional expectation of its output affine
// in the true input. That is what lets the estimators in package estimate
// invert the perturbation and recover the population parameter.
package mechanism

import (
	log "github.com/golang/glog"
)

// Kind is an enum type. Its values are the supported randomization
// mechanisms.
type Kind int

// Randomization mechanisms used to perturb true values.
const (
	BinaryResponseKind Kind = iota
	GaussianChainKind
	Unrecognised
)

// String returns the flag-friendly name of k.
func (k Kind) String() string {
	switch k {
	case BinaryResponseKind:
		return "binary"
	case GaussianChainKind:
		return "gaussian"
	}
	return "unrecognised"
}

// ParseKind converts the flag-friendly name of a mechanism into a Kind.
func ParseKind(s string) Kind {
	switch s {
	case "binary":
		return BinaryResponseKind
	case "gaussian":
		return GaussianChainKind
	default:
		log.Warningf("ParseKind: unknown mechanism kind %q specified, returning Unrecognised", s)
	}
	return Unrecognised
}
