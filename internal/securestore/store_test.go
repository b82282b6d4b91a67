package securestore_test

import (
	"os"
	"path/filepath"
	"strings"

	"biowallet/internal/securestore"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var (
		storePath string
		keyHex    string
		store     *securestore.Store
		err       error
	)

	BeforeEach(func() {
		storePath = filepath.Join(GinkgoT().TempDir(), "secrets.store")
		keyHex = strings.Repeat("ab", 32)

		store, err = securestore.New(storePath, keyHex)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("New", func() {
		When("the key is not valid hex", func() {
			It("should return an error", func() {
				_, err := securestore.New(storePath, "not-hex")
				Expect(err).To(Equal(securestore.ErrBadKey))
			})
		})

		When("the key is too short", func() {
			It("should return an error", func() {
				_, err := securestore.New(storePath, "abcdef")
				Expect(err).To(Equal(securestore.ErrBadKey))
			})
		})
	})

	Describe("Get", func() {
		When("the store file does not exist yet", func() {
			It("should report the key as absent", func() {
				value, ok, err := store.Get("device_secret")
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeFalse())
				Expect(value).To(BeEmpty())
			})
		})

		When("a value was stored", func() {
			BeforeEach(func() {
				err = store.Set("device_secret", "s3cret")
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return the stored value", func() {
				value, ok, err := store.Get("device_secret")
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeTrue())
				Expect(value).To(Equal("s3cret"))
			})

			It("should survive reopening the store", func() {
				reopened, err := securestore.New(storePath, keyHex)
				Expect(err).NotTo(HaveOccurred())

				value, ok, err := reopened.Get("device_secret")
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeTrue())
				Expect(value).To(Equal("s3cret"))
			})

			It("should not keep the value on disk in the clear", func() {
				raw, err := os.ReadFile(storePath)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(raw)).NotTo(ContainSubstring("s3cret"))
			})

			It("should fail to open with a different key", func() {
				other, err := securestore.New(storePath, strings.Repeat("cd", 32))
				Expect(err).NotTo(HaveOccurred())

				_, _, err = other.Get("device_secret")
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Set", func() {
		It("should overwrite an existing value", func() {
			Expect(store.Set("registered", "false")).To(Succeed())
			Expect(store.Set("registered", "true")).To(Succeed())

			value, ok, err := store.Get("registered")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal("true"))
		})

		It("should keep unrelated keys intact", func() {
			Expect(store.Set("device_secret", "s3cret")).To(Succeed())
			Expect(store.Set("registered", "true")).To(Succeed())

			value, ok, err := store.Get("device_secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal("s3cret"))
		})
	})

	Describe("Delete", func() {
		BeforeEach(func() {
			err = store.Set("device_secret", "s3cret")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should remove the key", func() {
			Expect(store.Delete("device_secret")).To(Succeed())

			_, ok, err := store.Get("device_secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("should tolerate deleting a missing key", func() {
			Expect(store.Delete("no_such_key")).To(Succeed())
		})
	})
})
