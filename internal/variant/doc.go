// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package variant synthesizes one specialized function per subset of promotable parameters.
//
// Go has no constant type parameters, so a promoted parameter p of type T becomes a
// type parameter
//
//	pConst interface{ Value() T }
//
// and the copied body starts with the binding
//
//	p := (*new(pConst)).Value()
//
// The identifier p inside the body then resolves to the value supplied by the type
// argument instead of a runtime argument. Each candidate literal gets its own zero-size
// [Source] type implementing Value.
package variant
