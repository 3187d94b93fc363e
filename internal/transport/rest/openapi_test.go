package rest_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOpenAPIContract(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "OpenAPI Contract Suite")
}

var _ = Describe("openapi.yml", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("is a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("documents the payroll endpoints", func() {
		for _, path := range []string{
			"/auth/login",
			"/attendance",
			"/payrolls/calculate",
			"/payrolls",
			"/payrecords",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), path)
		}
	})

	It("requires bearer auth by default", func() {
		Expect(doc.Components.SecuritySchemes).To(HaveKey("bearerAuth"))
	})
})
