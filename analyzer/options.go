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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/constcurry/analyzer/level"
	"fillmore-labs.com/constcurry/internal/config"
	"fillmore-labs.com/constcurry/internal/run"
)

// Option configures specific behavior of a [New] constcurry analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure expansion in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithMaxPromoted is an [Option] to limit the number of promotable parameters per function.
// Each function expands into 2^n variants for n promotable parameters.
func WithMaxPromoted(maxPromoted int) Option { return maxPromotedOption{maxPromoted: maxPromoted} }

type maxPromotedOption struct{ maxPromoted int }

func (o maxPromotedOption) apply(r *run.Options) {
	r.MaxPromoted = o.maxPromoted
}

func (o maxPromotedOption) LogAttr() slog.Attr {
	return slog.Int("max-promoted", o.maxPromoted)
}

// WithAnnotateUnused is an [Option] to mark generated variants with a //nolint:unused directive.
func WithAnnotateUnused(annotate bool) Option { return annotateUnusedOption{annotate: annotate} }

type annotateUnusedOption struct{ annotate bool }

func (o annotateUnusedOption) apply(r *run.Options) {
	r.Behavior.Set(config.AnnotateUnused, o.annotate)
}

func (o annotateUnusedOption) LogAttr() slog.Attr {
	return slog.Bool("annotate-unused", o.annotate)
}

// WithCollision is an [Option] to configure the naming collision check.
func WithCollision(collision level.Collision) Option { return collisionOption{collision: collision} }

type collisionOption struct{ collision level.Collision }

func (o collisionOption) apply(r *run.Options) {
	r.Collision = o.collision
}

func (o collisionOption) LogAttr() slog.Attr {
	return slog.String("collision", o.collision.String())
}
