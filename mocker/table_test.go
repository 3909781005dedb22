package mocker

import (
	"io/ioutil"
	"net/http"
	"time"

	"github.com/mocksrv/mocker/spec"
	"github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)

	return logger
}

var _ = Describe("Table", func() {
	It("Fills in defaults for an empty declaration", func() {
		table, err := BuildTable([]spec.Response{{}}, quietLogger())
		Expect(err).ShouldNot(HaveOccurred())

		response := table.Lookup(http.MethodGet, "/")
		Expect(response).NotTo(BeNil())
		Expect(response.StatusCode).To(Equal(http.StatusOK))
		Expect(response.Headers).To(BeEmpty())
		Expect(response.Delay).To(Equal(time.Duration(0)))
		Expect(response.Body.Length()).To(Equal(0))
	})

	It("Uppercases declared methods", func() {
		table, err := BuildTable([]spec.Response{
			{Method: "pUt", Path: "/case", ResponseCode: 202},
		}, quietLogger())
		Expect(err).ShouldNot(HaveOccurred())

		Expect(table.Lookup(http.MethodPut, "/case")).NotTo(BeNil())
	})

	It("Lets later declarations overwrite earlier ones", func() {
		table, err := BuildTable([]spec.Response{
			{Method: "get", Path: "/dup", Body: "first"},
			{Method: "get", Path: "/dup", Body: "second"},
		}, quietLogger())
		Expect(err).ShouldNot(HaveOccurred())

		Expect(string(table.Lookup(http.MethodGet, "/dup").Body.Load())).To(Equal("second"))
	})

	It("Rejects methods outside the supported five", func() {
		_, err := BuildTable([]spec.Response{
			{Method: "patch", Path: "/nope"},
		}, quietLogger())

		Expect(err).Should(HaveOccurred())
	})

	It("Matches paths byte for byte, query string included", func() {
		table, err := BuildTable([]spec.Response{
			{Method: "get", Path: "/exact?page=1", Body: "page one"},
		}, quietLogger())
		Expect(err).ShouldNot(HaveOccurred())

		Expect(table.Lookup(http.MethodGet, "/exact?page=1")).NotTo(BeNil())
		Expect(table.Lookup(http.MethodGet, "/exact")).To(BeNil())
		Expect(table.Lookup(http.MethodGet, "/exact?page=2")).To(BeNil())
		Expect(table.Lookup(http.MethodGet, "/exact/")).To(BeNil())
	})

	It("Misses on unsupported lookup methods", func() {
		table, err := BuildTable(nil, quietLogger())
		Expect(err).ShouldNot(HaveOccurred())

		Expect(table.Lookup("PATCH", "/anything")).To(BeNil())
	})

	It("Converts fractional delay seconds", func() {
		table, err := BuildTable([]spec.Response{
			{Method: "get", Path: "/slow", Delay: 0.2},
		}, quietLogger())
		Expect(err).ShouldNot(HaveOccurred())

		Expect(table.Lookup(http.MethodGet, "/slow").Delay).To(Equal(200 * time.Millisecond))
	})

	It("Preserves declared header order", func() {
		table, err := BuildTable([]spec.Response{
			{
				Method: "get",
				Path:   "/headers",
				Headers: []map[string]string{
					{"X-First": "1"},
					{"X-Second": "2"},
					{"X-Third": "3"},
				},
			},
		}, quietLogger())
		Expect(err).ShouldNot(HaveOccurred())

		headers := table.Lookup(http.MethodGet, "/headers").Headers
		Expect(headers).To(Equal([]Header{
			{Name: "X-First", Value: "1"},
			{Name: "X-Second", Value: "2"},
			{Name: "X-Third", Value: "3"},
		}))
	})
})
