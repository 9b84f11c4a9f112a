package language_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/libtranslate/internal/language"
)

var _ = Describe("Language", func() {
	DescribeTable("Code and Parse agree",
		func(l language.Language, code string) {
			Expect(l.Code()).To(Equal(code))

			parsed, ok := language.Parse(code)
			Expect(ok).To(BeTrue())
			Expect(parsed).To(Equal(l))
		},
		Entry("auto", language.Auto, "auto"),
		Entry("english", language.English, "en"),
		Entry("hebrew", language.Hebrew, "he"),
		Entry("simplified chinese", language.ChineseSimplified, "zh-CN"),
		Entry("traditional chinese", language.ChineseTraditional, "zh-TW"),
		Entry("zulu", language.Zulu, "zu"),
	)

	It("should parse codes case-insensitively", func() {
		l, ok := language.Parse("zh-cn")
		Expect(ok).To(BeTrue())
		Expect(l).To(Equal(language.ChineseSimplified))
	})

	DescribeTable("should fall back to the base of BCP 47 tags",
		func(code string, expected language.Language) {
			l, ok := language.Parse(code)
			Expect(ok).To(BeTrue())
			Expect(l).To(Equal(expected))
		},
		Entry("region", "en-GB", language.English),
		Entry("brazilian portuguese", "pt-BR", language.Portuguese),
		Entry("traditional script", "zh-Hant", language.ChineseTraditional),
		Entry("hong kong", "zh-HK", language.ChineseTraditional),
		Entry("singapore simplified", "zh-Hans-SG", language.ChineseSimplified),
		Entry("bare chinese", "zh", language.ChineseSimplified),
	)

	It("should reject unknown codes", func() {
		l, ok := language.Parse("xx")
		Expect(ok).To(BeFalse())
		Expect(l).To(Equal(language.Unknown))

		_, ok = language.Parse("")
		Expect(ok).To(BeFalse())

		_, ok = language.Parse("not a tag")
		Expect(ok).To(BeFalse())
	})

	It("should round-trip every language", func() {
		all := language.All()
		Expect(all).To(HaveLen(103))
		Expect(all[0]).To(Equal(language.Auto))

		seen := make(map[string]bool)
		for _, l := range all {
			Expect(l.IsKnown()).To(BeTrue())
			Expect(seen).NotTo(HaveKey(l.Code()), "duplicate code %s", l.Code())
			seen[l.Code()] = true

			parsed, ok := language.Parse(l.Code())
			Expect(ok).To(BeTrue())
			Expect(parsed).To(Equal(l))
		}
	})

	It("should name languages in English", func() {
		Expect(language.English.String()).To(Equal("English"))
		Expect(language.HaitianCreole.String()).To(Equal("Haitian Creole"))
		Expect(language.ChineseSimplified.String()).To(Equal("Chinese (Simplified)"))
		Expect(language.Language(-4).String()).To(Equal("Unknown"))
	})

	It("should treat Unknown as having no code", func() {
		Expect(language.Unknown.Code()).To(BeEmpty())
		Expect(language.Unknown.IsKnown()).To(BeFalse())
	})
})
