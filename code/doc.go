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

// Package code defines the machine-readable classes a normalized ORM error
// can carry.
//
// A code names the HTTP-facing class of a failure ("unprocessable",
// "conflict", "internal", ...). The translator derives it from the incoming
// ORM error and the mapper turns it back into transport statuses. Codes are:
//
//   - lowercase ASCII;
//   - underscore-separated;
//   - 3 to 64 characters long, starting with a letter.
//
// Empty codes are never attached to a normalized error.
package code
