package platformservice

// ArchKind enumerates the CPU architecture families the service recognizes.
type ArchKind int

const (
	ArchUnknown ArchKind = iota
	ArchArmV5
	ArchArmV6
	ArchArmV7
	ArchArm64
	ArchI386
	ArchI586
	ArchI686
	ArchMips
	ArchMipsEl
	ArchMips64
	ArchMips64El
	ArchPowerPc
	ArchPowerPc64
	ArchPowerPc64Le
	ArchRiscv32
	ArchRiscv64
	ArchS390x
	ArchSparc
	ArchSparc64
	ArchWasm32
	ArchWasm64
	ArchX64
)

var archNames = map[ArchKind]string{
	ArchArmV5:       "ARMv5",
	ArchArmV6:       "ARMv6",
	ArchArmV7:       "ARMv7",
	ArchArm64:       "ARM64",
	ArchI386:        "I386",
	ArchI586:        "I586",
	ArchI686:        "I686",
	ArchMips:        "MIPS",
	ArchMipsEl:      "MIPS (LE)",
	ArchMips64:      "MIPS64",
	ArchMips64El:    "MIPS64 (LE)",
	ArchPowerPc:     "PowerPC",
	ArchPowerPc64:   "PowerPC64",
	ArchPowerPc64Le: "PowerPC64LE",
	ArchRiscv32:     "RISC-V (32-Bit)",
	ArchRiscv64:     "RISC-V (64-Bit)",
	ArchS390x:       "S390x",
	ArchSparc:       "SPARC",
	ArchSparc64:     "SPARC64",
	ArchWasm32:      "Wasm32",
	ArchWasm64:      "Wasm64",
	ArchX64:         "X86_64",
}

// machineArchs maps uname machine strings (and their common aliases) to architectures.
var machineArchs = map[string]ArchKind{
	"aarch64":     ArchArm64,
	"arm64":       ArchArm64,
	"aarch64_be":  ArchArm64,
	"armv8b":      ArchArm64,
	"armv8l":      ArchArm64,
	"armv5":       ArchArmV5,
	"armv6":       ArchArmV6,
	"arm":         ArchArmV6,
	"armv7":       ArchArmV7,
	"armv7l":      ArchArmV7,
	"i386":        ArchI386,
	"i586":        ArchI586,
	"i686":        ArchI686,
	"i686-AT386":  ArchI686,
	"x86":         ArchI686,
	"mips":        ArchMips,
	"mipsel":      ArchMipsEl,
	"mips64":      ArchMips64,
	"mips64el":    ArchMips64El,
	"powerpc":     ArchPowerPc,
	"ppc":         ArchPowerPc,
	"ppcle":       ArchPowerPc,
	"powerpc64":   ArchPowerPc64,
	"ppc64":       ArchPowerPc64,
	"ppc64le":     ArchPowerPc64,
	"powerpc64le": ArchPowerPc64Le,
	"riscv32":     ArchRiscv32,
	"riscv64":     ArchRiscv64,
	"s390x":       ArchS390x,
	"sparc":       ArchSparc,
	"sparc64":     ArchSparc64,
	"wasm32":      ArchWasm32,
	"wasm64":      ArchWasm64,
	"x86_64":      ArchX64,
	"amd64":       ArchX64,
}

// Arch is a classified CPU architecture. Name always holds the raw machine
// string reported by the OS.
type Arch struct {
	Kind ArchKind
	Name string
}

// ClassifyArch maps a machine type string (uname -m) to an Arch. Unrecognized
// strings classify as ArchUnknown and keep the raw value.
func ClassifyArch(machine string) Arch {
	return Arch{Kind: machineArchs[machine], Name: machine}
}

// IsUnknown reports whether the machine string was not recognized.
func (a Arch) IsUnknown() bool {
	return a.Kind == ArchUnknown
}

// Width returns the pointer width of the architecture in bits, or 0 when unknown.
func (a Arch) Width() int {
	switch a.Kind {
	case ArchUnknown:
		return 0
	case ArchArm64, ArchMips64, ArchMips64El, ArchPowerPc64, ArchPowerPc64Le,
		ArchRiscv64, ArchS390x, ArchSparc64, ArchWasm64, ArchX64:
		return 64
	default:
		return 32
	}
}

func (a Arch) String() string {
	if a.IsUnknown() {
		return "Unknown: " + a.Name
	}

	return archNames[a.Kind]
}
