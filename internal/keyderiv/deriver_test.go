package keyderiv_test

import (
	"time"

	"biowallet/internal/biometric"
	"biowallet/internal/keyderiv"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Deriver", func() {
	var (
		deriver *keyderiv.Deriver
		secret  string
	)

	freshProof := func() *biometric.Proof {
		return &biometric.Proof{
			Kind:      biometric.CeremonyLogin,
			Biometric: biometric.KindFingerprint,
			IssuedAt:  time.Now(),
			SecretRef: biometric.DeviceSecretKey,
		}
	}

	BeforeEach(func() {
		deriver = keyderiv.NewDeriver()
		secret = "7e4b9c52-0f13-4f2e-9a61-2d3c8f0b6a17"
	})

	Describe("Derive", func() {
		It("produces a valid ethereum address", func() {
			keypair, err := deriver.Derive(freshProof(), secret)

			Expect(err).NotTo(HaveOccurred())
			Expect(common.IsHexAddress(keypair.Address)).To(BeTrue())
			Expect(keypair.PrivateKey()).NotTo(BeNil())
			Expect(keypair.PublicKeyHex()).NotTo(BeEmpty())
		})

		It("derives the same keypair for the same secret every time", func() {
			first, err := deriver.Derive(freshProof(), secret)
			Expect(err).NotTo(HaveOccurred())

			second, err := deriver.Derive(freshProof(), secret)
			Expect(err).NotTo(HaveOccurred())

			Expect(second.Address).To(Equal(first.Address))
			Expect(second.PublicKeyHex()).To(Equal(first.PublicKeyHex()))
		})

		It("derives different keypairs for different secrets", func() {
			first, err := deriver.Derive(freshProof(), secret)
			Expect(err).NotTo(HaveOccurred())

			second, err := deriver.Derive(freshProof(), "another-device-secret")
			Expect(err).NotTo(HaveOccurred())

			Expect(second.Address).NotTo(Equal(first.Address))
		})

		When("the proof was already consumed", func() {
			It("refuses to derive", func() {
				proof := freshProof()

				_, err := deriver.Derive(proof, secret)
				Expect(err).NotTo(HaveOccurred())

				_, err = deriver.Derive(proof, secret)
				Expect(err).To(MatchError(biometric.ErrProofConsumed))
			})
		})

		When("the proof is older than the validity window", func() {
			It("refuses to derive", func() {
				proof := freshProof()
				proof.IssuedAt = time.Now().Add(-time.Minute)

				_, err := deriver.Derive(proof, secret)
				Expect(err).To(MatchError(biometric.ErrProofExpired))
			})
		})
	})

	Describe("Keypair.Destroy", func() {
		It("drops the private key and is safe to call twice", func() {
			keypair, err := deriver.Derive(freshProof(), secret)
			Expect(err).NotTo(HaveOccurred())

			address := keypair.Address
			keypair.Destroy()
			keypair.Destroy()

			Expect(keypair.PrivateKey()).To(BeNil())
			Expect(keypair.Address).To(Equal(address))
		})
	})
})
