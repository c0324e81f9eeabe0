package prover

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Prover holds the compiled solution circuit and its keys.
type Prover struct {
	curve ecc.ID
	cs    constraint.ConstraintSystem
	pk    groth16.ProvingKey
	vk    groth16.VerifyingKey
}

// New compiles the solution circuit and runs trusted setup. Compiling
// is expensive; reuse one Prover across proofs.
func New() (*Prover, error) {
	curve := ecc.BN254

	cs, err := frontend.Compile(curve.ScalarField(), r1cs.NewBuilder, &SolutionCircuit{})
	if err != nil {
		return nil, fmt.Errorf("circuit compilation failed: %w", err)
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	return &Prover{curve: curve, cs: cs, pk: pk, vk: vk}, nil
}

// Constraints returns the number of constraints in the compiled
// circuit.
func (p *Prover) Constraints() int {
	return p.cs.GetNbConstraints()
}

// Prove generates a proof that solution completes givens.
func (p *Prover) Prove(givens, solution [81]int) (groth16.Proof, error) {
	assignment := newAssignment(givens, solution)
	w, err := frontend.NewWitness(assignment, p.curve.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness creation failed: %w", err)
	}
	proof, err := groth16.Prove(p.cs, p.pk, w)
	if err != nil {
		return nil, fmt.Errorf("proof generation failed: %w", err)
	}
	return proof, nil
}

// Verify checks a proof against the public givens.
func (p *Prover) Verify(proof groth16.Proof, givens [81]int) error {
	assignment := newAssignment(givens, [81]int{})
	w, err := frontend.NewWitness(assignment, p.curve.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("public witness creation failed: %w", err)
	}
	if err := groth16.Verify(proof, p.vk, w); err != nil {
		return fmt.Errorf("proof verification failed: %w", err)
	}
	return nil
}

func newAssignment(givens, solution [81]int) *SolutionCircuit {
	c := &SolutionCircuit{}
	for i := 0; i < 81; i++ {
		c.Givens[i] = givens[i]
		c.Solution[i] = solution[i]
	}
	return c
}
