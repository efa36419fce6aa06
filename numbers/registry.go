// SPDX-License-Identifier: MIT

package numbers

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/brandnum/refined"
)

// ErrUnknownDomain is returned by Get for names the registry does not hold.
var ErrUnknownDomain = errors.New("numbers: unknown domain")

// Entry pairs a registered domain name with its descriptor.
type Entry struct {
	Name       string
	Descriptor refined.Descriptor
}

type registered struct {
	name   string
	kernel *refined.Kernel
}

// registry is keyed by lower-cased name; names keeps canonical spelling, sorted.
var (
	registry = index(
		registered{"Int", IntOps.Kernel()},
		registered{"NonZeroInt", NonZeroIntOps.Kernel()},
		registered{"PositiveInt", PositiveIntOps.Kernel()},
		registered{"NonNegativeInt", NonNegativeIntOps.Kernel()},
		registered{"SafeInt", SafeIntOps.Kernel()},
		registered{"NonZeroSafeInt", NonZeroSafeIntOps.Kernel()},
		registered{"PositiveSafeInt", PositiveSafeIntOps.Kernel()},
		registered{"SafeUint", SafeUintOps.Kernel()},
		registered{"Int8", Int8Ops.Kernel()},
		registered{"NonZeroInt8", NonZeroInt8Ops.Kernel()},
		registered{"PositiveInt8", PositiveInt8Ops.Kernel()},
		registered{"Int16", Int16Ops.Kernel()},
		registered{"NonZeroInt16", NonZeroInt16Ops.Kernel()},
		registered{"PositiveInt16", PositiveInt16Ops.Kernel()},
		registered{"Int32", Int32Ops.Kernel()},
		registered{"NonZeroInt32", NonZeroInt32Ops.Kernel()},
		registered{"PositiveInt32", PositiveInt32Ops.Kernel()},
		registered{"Uint8", Uint8Ops.Kernel()},
		registered{"NonZeroUint8", NonZeroUint8Ops.Kernel()},
		registered{"Uint16", Uint16Ops.Kernel()},
		registered{"NonZeroUint16", NonZeroUint16Ops.Kernel()},
		registered{"Uint32", Uint32Ops.Kernel()},
		registered{"NonZeroUint32", NonZeroUint32Ops.Kernel()},
		registered{"FiniteNumber", FiniteNumberOps.Kernel()},
		registered{"NonZeroFiniteNumber", NonZeroFiniteNumberOps.Kernel()},
		registered{"PositiveFiniteNumber", PositiveFiniteNumberOps.Kernel()},
		registered{"NonNegativeFiniteNumber", NonNegativeFiniteNumberOps.Kernel()},
	)
	names = sortedNames(registry)
)

func index(entries ...registered) map[string]registered {
	m := make(map[string]registered, len(entries))
	for _, e := range entries {
		key := strings.ToLower(e.name)
		if _, dup := m[key]; dup {
			panic(fmt.Sprintf("numbers: duplicate domain %q", e.name))
		}
		m[key] = e
	}

	return m
}

func sortedNames(m map[string]registered) []string {
	out := make([]string, 0, len(m))
	for _, e := range m {
		out = append(out, e.name)
	}
	sort.Strings(out)

	return out
}

// Lookup returns the kernel of the named domain. Names match case-insensitively.
func Lookup(name string) (*refined.Kernel, bool) {
	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}

	return e.kernel, true
}

// Get is Lookup with an error wrapping ErrUnknownDomain.
func Get(name string) (*refined.Kernel, error) {
	k, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("Get: %q: %w", name, ErrUnknownDomain)
	}

	return k, nil
}

// Names returns the registered domain names, sorted. The slice is a copy.
func Names() []string {
	return append([]string(nil), names...)
}

// Descriptors returns every registered domain in Names order.
func Descriptors() []Entry {
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		out = append(out, Entry{Name: n, Descriptor: registry[strings.ToLower(n)].kernel.Descriptor()})
	}

	return out
}
