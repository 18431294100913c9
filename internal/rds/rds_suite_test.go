package rds_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRDS(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "RDS Suite")
}
