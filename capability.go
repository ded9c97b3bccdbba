package simdjson

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// PADDING is the number of zero bytes the classifier is guaranteed may be
// read past the logical end of an input buffer. It is a public
// compile-time constant per the padded-input contract.
const PADDING = 64

// blockClassifier classifies one padded 64-byte block of input into
// structural, quote and error bitmasks, carrying the running
// escape/in-string/pseudo-structural state across calls.
//
// The CPU-dispatch shim that would select among AVX2/SSE4.2/NEON/scalar
// variants of this interface is an external collaborator (spec'd, not
// implemented here): this repo ships exactly one implementation,
// scalarClassifier, a portable bit-parallel kernel that needs no vector
// intrinsics to be correct.
type blockClassifier interface {
	classifyBlock(block *[64]byte, state *classifierState) blockMasks
}

// classifierState is the carry state threaded between successive 64-byte
// blocks of a single document.
type classifierState struct {
	prevOddBackslash    uint64
	prevInsideString    uint64
	prevPseudoStructEnd uint64
}

// blockMasks are the three bitmasks produced per block, one bit per byte:
// the structural marks, the real (unescaped) quote positions needed by
// Stage 2 to recognize the opening quote of a string, and raw control
// bytes inside strings. Whitespace is folded into the structural mask and
// not returned.
type blockMasks struct {
	structural uint64 // struct_mask | quote_mask | pseudo_struct_mask, in-string bits cleared
	quote      uint64 // real, unescaped quote positions
	errorMask  uint64 // raw control byte (<0x20) found inside a string
}

// Capabilities reports, for diagnostics only, which vector extensions the
// host CPU advertises. It never influences which classifier runs: the
// classifier is chosen once, at package init, and is always the portable
// scalar kernel. Two independent feature-detection libraries are
// consulted, matching how the two source ecosystems this module draws
// from each probe the CPU (cpuid/v2 by the structural classifier's own
// lineage, x/sys/cpu by the sibling SIMD text-parsing tooling this module
// was grounded alongside): cpuid/v2 supplies the x86 fields and x/sys/cpu
// supplies NEON. Their answers are not compared with each other.
type Capabilities struct {
	AVX2     bool
	AVX512   bool
	SSE42    bool
	NEON     bool
	HasCLMUL bool
}

var hostCapabilities Capabilities
var hostCapabilitiesOnce sync.Once

// HostCapabilities returns the detected vector capabilities of the
// current CPU. This is informational: Parse always uses the portable
// scalar classifier regardless of what is reported here.
func HostCapabilities() Capabilities {
	hostCapabilitiesOnce.Do(func() {
		hostCapabilities = Capabilities{
			AVX2:     cpuid.CPU.Supports(cpuid.AVX2),
			AVX512:   cpuid.CPU.Supports(cpuid.AVX512F),
			SSE42:    cpuid.CPU.Supports(cpuid.SSE42),
			HasCLMUL: cpuid.CPU.Supports(cpuid.CLMUL),
			NEON:     cpu.ARM64.HasASIMD,
		}
	})
	return hostCapabilities
}

// SupportedCPU reports whether the host is able to run the parser at
// all. The portable classifier has no hard CPU requirement, so this is
// always true; it is kept as a stable entry point because callers of
// SIMD JSON parsers conventionally gate on it before calling Parse.
func SupportedCPU() bool {
	return true
}

// defaultClassifier is the sole blockClassifier implementation used by
// Stage 1. It is a package-level value (not a dispatched function
// pointer) because there is only ever one variant to dispatch to.
var defaultClassifier blockClassifier = scalarClassifier{}
