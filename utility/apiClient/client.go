package apiClient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	Config "memoless-api/config"
	"memoless-api/utility/appError"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/logger"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/context/ctxhttp"
)

// Client object for external API request
type Client struct {
	BaseURL    *url.URL
	UserAgent  string
	Config     Config.Data
	HttpClient *http.Client
}

// New ... builds a client for one collaborator base URL
func New(HttpClient *http.Client, config Config.Data, baseURL string) *Client {
	if HttpClient == nil {
		HttpClient = &http.Client{Timeout: time.Duration(config.RequestTimeout) * time.Second}
	}
	c := &Client{HttpClient: HttpClient, UserAgent: config.ServiceName}
	c.Config = config
	c.BaseURL, _ = url.Parse(baseURL)

	return c
}

func (c *Client) NewRequest(method, path string, body interface{}) (*http.Request, error) {
	u := c.BaseURL
	if path != "" {
		rel, err := url.Parse(strings.TrimLeft(path, "/"))
		if err != nil {
			return nil, err
		}
		base := *c.BaseURL
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
			if base.RawPath != "" {
				base.RawPath += "/"
			}
		}
		u = base.ResolveReference(rel)
	}
	var buf io.ReadWriter
	if body != nil {
		buf = new(bytes.Buffer)
		err := json.NewEncoder(buf).Encode(body)
		if err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequest(method, u.String(), buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	return req, nil
}

func (c *Client) AddHeader(req *http.Request, headers map[string]string) *http.Request {
	for header, value := range headers {
		req.Header.Set(header, value)
	}
	return req
}

// Do ... sends the request and decodes a 2xx JSON body into v. Non 2xx answers
// come back as appError.Err carrying the collaborator's status and raw body.
func (c *Client) Do(ctx context.Context, req *http.Request, v interface{}) (*http.Response, error) {
	startTime := time.Now()
	resp, err := ctxhttp.Do(ctx, c.HttpClient, req)
	if err != nil {
		logger.Error("Request to %s failed : %+v", req.URL, err)
		return nil, appError.Wrap(http.StatusBadGateway, errorcode.CHAIN_UNAVAILABLE, err)
	}
	defer resp.Body.Close()

	resBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return resp, err
	}
	logger.Info("Response from %s : [%d] %s Time: %dms", req.URL, resp.StatusCode, resBody, time.Since(startTime).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, appError.Err{
			ErrCode: resp.StatusCode,
			ErrType: errorcode.CHAIN_UNAVAILABLE,
			Err:     fmt.Errorf("%s", string(resBody)),
			ErrData: string(resBody),
		}
	}

	if v == nil || len(resBody) == 0 {
		return resp, nil
	}
	err = json.Unmarshal(resBody, v)
	return resp, err
}
