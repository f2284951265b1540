package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/podiumd/versionwatch/pkg/integrations"
)

func TestFetchDocumentAndLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<ul><li> <a href="/docs/17.2/">17.2</a> <a href="/other">x</a></li><li>no link</li></ul>`))
	}))
	defer server.Close()

	client := integrations.Options{HTTPClient: server.Client()}.NewClient("test", nil)
	doc, err := FetchDocument(context.Background(), client, server.URL+"/docs/release/")
	if err != nil {
		t.Fatalf("FetchDocument() error: %v", err)
	}

	items := doc.Find("li")
	c, ok := Link(items.Eq(0), server.URL+"/docs/release/")
	if !ok {
		t.Fatal("Link() found no anchor")
	}
	if c.Token != "17.2" || c.URL != server.URL+"/docs/17.2/" {
		t.Errorf("Link() = %+v", c)
	}
	if _, ok := Link(items.Eq(1), server.URL); ok {
		t.Error("Link() on item without anchor should report !ok")
	}
}
