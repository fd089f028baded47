// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"strings"

	"github.com/pdiddy/litscope/internal/parse"
	"github.com/pdiddy/litscope/pkg/types"
)

// PubMed efetch XML structures (the subset litscope consumes).

type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation   medlineCitation `xml:"MedlineCitation"`
	PubmedData pubmedData      `xml:"PubmedData"`
}

type medlineCitation struct {
	PMID         string        `xml:"PMID"`
	Article      citedArticle  `xml:"Article"`
	MeshHeadings []meshHeading `xml:"MeshHeadingList>MeshHeading"`
	KeywordLists []keywordList `xml:"KeywordList"`
}

type citedArticle struct {
	Title    string         `xml:"ArticleTitle"`
	Abstract []abstractText `xml:"Abstract>AbstractText"`
	Authors  []author       `xml:"AuthorList>Author"`
	Journal  journal        `xml:"Journal"`
}

type abstractText struct {
	Label string `xml:"Label,attr"`
	Text  string `xml:",chardata"`
}

type author struct {
	LastName       string `xml:"LastName"`
	ForeName       string `xml:"ForeName"`
	Initials       string `xml:"Initials"`
	CollectiveName string `xml:"CollectiveName"`
}

type journal struct {
	Title   string  `xml:"Title"`
	PubDate pubDate `xml:"JournalIssue>PubDate"`
}

type pubDate struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	MedlineDate string `xml:"MedlineDate"`
}

type meshHeading struct {
	Descriptor string `xml:"DescriptorName"`
}

type keywordList struct {
	Keywords []string `xml:"Keyword"`
}

type pubmedData struct {
	ArticleIDs []articleID `xml:"ArticleIdList>ArticleId"`
}

type articleID struct {
	IDType string `xml:"IdType,attr"`
	Value  string `xml:",chardata"`
}

// toArticle maps one PubMed record onto the shared Article shape. The raw
// publication date string is assembled the way the export format carries
// it ("2023 Jan 15"), then resolved through the same cascade the parser
// uses so search results and re-parsed exports agree.
func (p pubmedArticle) toArticle() types.Article {
	a := types.Article{
		Title:    strings.TrimSpace(p.Citation.Article.Title),
		Journal:  strings.TrimSpace(p.Citation.Article.Journal.Title),
		PMID:     strings.TrimSpace(p.Citation.PMID),
		Abstract: joinAbstract(p.Citation.Article.Abstract),
	}

	for _, au := range p.Citation.Article.Authors {
		if name := au.displayName(); name != "" {
			a.Authors = append(a.Authors, name)
		}
	}

	a.PubDateRaw = p.Citation.Article.Journal.PubDate.raw()
	a.Date, _ = parse.ParseDate(a.PubDateRaw)

	// Declared keywords: MeSH descriptors first, then author keywords.
	for _, mh := range p.Citation.MeshHeadings {
		if d := strings.TrimSpace(mh.Descriptor); d != "" {
			a.Keywords = append(a.Keywords, d)
		}
	}
	for _, kl := range p.Citation.KeywordLists {
		for _, kw := range kl.Keywords {
			if kw = strings.TrimSpace(kw); kw != "" {
				a.Keywords = append(a.Keywords, kw)
			}
		}
	}

	for _, id := range p.PubmedData.ArticleIDs {
		if id.IDType == "doi" {
			a.DOI = strings.TrimSpace(id.Value)
			break
		}
	}

	return a
}

// displayName renders an author the way PubMed exports list them:
// "LastName ForeName", falling back to initials or a collective name.
func (au author) displayName() string {
	switch {
	case au.LastName != "" && au.ForeName != "":
		return au.LastName + " " + au.ForeName
	case au.LastName != "" && au.Initials != "":
		return au.LastName + " " + au.Initials
	case au.LastName != "":
		return au.LastName
	default:
		return strings.TrimSpace(au.CollectiveName)
	}
}

// raw reassembles the textual date the export format carries. MedlineDate
// stands in when the structured fields are absent (e.g. "2023 Jan-Mar").
func (d pubDate) raw() string {
	if d.Year == "" {
		return strings.TrimSpace(d.MedlineDate)
	}
	s := d.Year
	if d.Month != "" {
		s += " " + d.Month
		if d.Day != "" {
			s += " " + d.Day
		}
	}
	return s
}

// joinAbstract flattens structured abstracts, keeping section labels
// ("BACKGROUND: ...") the way the original export format does.
func joinAbstract(parts []abstractText) string {
	var b strings.Builder
	for _, part := range parts {
		text := strings.TrimSpace(part.Text)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		if label := strings.TrimSpace(part.Label); label != "" {
			b.WriteString(label + ": ")
		}
		b.WriteString(text)
	}
	return b.String()
}
