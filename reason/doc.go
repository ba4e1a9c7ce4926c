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

// Package reason provides dot-separated markers that refine a code.
//
// A reason records which classification path produced a normalized error,
// e.g. "orm.validation" or "orm.usage". Callers may refine one with Child
// ("orm.upstream.unique") and match families with HasPrefix. The empty reason
// is valid and means "not provided".
package reason
