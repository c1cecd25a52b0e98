package sanity_check

import (
	"fmt"
	"io"
	"os"

	"prot_buddy_go/config" // Version control file
	"prot_buddy_go/protparam"
)

// ReferenceHeavyChain is the variable heavy chain of a hypothetical
// CD20-binding antibody, used as a known-good input.
const ReferenceHeavyChain = "EVQLVESGGGLVQPGGSLRLSCAASGFTFSSYAMSWVRQAPGKGLEWVSAISYDGSTYYADSVKGRFTISRDNAKNTLYLQMNSLRAEDTAVYYCARGGGGMDVWGQGTTVTVSS"

// Run performs a simple sanity check to ensure Prot Buddy is running
// properly: it analyzes the reference chain and prints the result.
func Run(args []string) {
	if err := Check(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Sanity check failed:", err)
		os.Exit(1)
	}
}

// Check analyzes ReferenceHeavyChain and writes the result to w.
func Check(w io.Writer) error {
	result, err := protparam.Analyze(ReferenceHeavyChain)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Successfully running Prot Buddy! (%s)\n", config.Main_version)
	fmt.Fprintf(w, "Reference sequence: %d aa\n", len(ReferenceHeavyChain))
	fmt.Fprintf(w, "  Molecular weight:  %.2f Da\n", result.Weight)
	fmt.Fprintf(w, "  Aromaticity:       %.4f\n", result.Aromaticity)
	fmt.Fprintf(w, "  Instability index: %.2f\n", result.InstabilityIndex)
	fmt.Fprintf(w, "  Isoelectric point: %.2f\n", result.IsoelectricPoint)
	fmt.Fprintf(w, "  Secondary structure (helix, turn, sheet): %.4f, %.4f, %.4f\n",
		result.SecondaryStructure.Helix, result.SecondaryStructure.Turn, result.SecondaryStructure.Sheet)
	return nil
}
