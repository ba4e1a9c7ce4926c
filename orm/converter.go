/*
   Copyright 2025 The DIRPX Authors

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

package orm

// Converter lifts a driver-specific error into *Error, *ValidationError or
// *UsageError. It reports false when err is not something it understands.
type Converter func(err error) (error, bool)

// Convert tries convs in order and returns the first conversion.
func Convert(err error, convs ...Converter) (error, bool) {
	if err == nil {
		return nil, false
	}
	for _, conv := range convs {
		if conv == nil {
			continue
		}
		if out, ok := conv(err); ok && out != nil {
			return out, true
		}
	}
	return err, false
}
