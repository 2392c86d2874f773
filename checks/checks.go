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

// Package checks contains parameter checks for randomized response
// mechanisms and estimators. Invalid parameters are reported, never
// clamped.
package checks

import (
	"fmt"
	"math"
)

const (
	probabilityName = "Probability"
	noiseScaleName  = "NoiseScale"
	bitName         = "Bit"
)

func verifyName(defaultName string, nameSlice []string) (string, error) {
	var name string
	switch len(nameSlice) {
	case 0:
		name = defaultName
	case 1:
		name = nameSlice[0]
	default:
		return "", fmt.Errorf("This should never happen. There should be 0 or 1 'name' parameter, got %d", len(nameSlice))
	}
	return name, nil
}

// CheckProbability returns an error if p lies outside [0, 1] or is not finite.
func CheckProbability(p float64, name ...string) error {
	pName, err := verifyName(probabilityName, name)
	if err != nil {
		return err
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return fmt.Errorf("%s is %f, must be within [0, 1]", pName, p)
	}
	return nil
}

// CheckNoiseScale returns an error if sigma is nonpositive, NaN or ±∞.
func CheckNoiseScale(sigma float64, name ...string) error {
	sName, err := verifyName(noiseScaleName, name)
	if err != nil {
		return err
	}
	if sigma <= 0 || math.IsInf(sigma, 0) || math.IsNaN(sigma) {
		return fmt.Errorf("%s is %f, must be strictly positive and finite", sName, sigma)
	}
	return nil
}

// CheckNoiseScales returns an error if sigmas holds no stage at all or if
// any stage scale is invalid.
func CheckNoiseScales(sigmas []float64, name ...string) error {
	sName, err := verifyName(noiseScaleName, name)
	if err != nil {
		return err
	}
	if len(sigmas) == 0 {
		return fmt.Errorf("%s must contain at least one stage scale", sName)
	}
	for i, sigma := range sigmas {
		if err := CheckNoiseScale(sigma, fmt.Sprintf("%s[%d]", sName, i)); err != nil {
			return err
		}
	}
	return nil
}

// CheckSampleSize returns an error if n is negative.
func CheckSampleSize(n int) error {
	if n < 0 {
		return fmt.Errorf("SampleSize is %d, must be nonnegative", n)
	}
	return nil
}

// CheckBit returns an error if b is neither 0 nor 1.
func CheckBit(b int64, name ...string) error {
	bName, err := verifyName(bitName, name)
	if err != nil {
		return err
	}
	if b != 0 && b != 1 {
		return fmt.Errorf("%s is %d, must be 0 or 1", bName, b)
	}
	return nil
}

// CheckAlpha returns an error if the supplied alpha is not between 0 and 1.
func CheckAlpha(alpha float64) error {
	if alpha <= 0 || alpha >= 1 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return fmt.Errorf("Alpha is %f, must be within (0, 1) and finite", alpha)
	}
	return nil
}
