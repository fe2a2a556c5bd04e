// Copyright 2026 The Scitable Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scitable defines the type system shared by the scitable
// packages: the closed set of element shapes a table cell may take, the
// generic constraints built from them, and the error kinds reported by
// the containers.
//
// The containers themselves live in the table and metadata packages.
package scitable
