package api

import (
	"net/http"

	"github.com/saasbridge/saasbridge/internal/server"
)

// CloudflareZonesHandler handles /api/v1/cloudflare/zones.
func CloudflareZonesHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.Cloudflare == nil {
			respondVendorDisabled(w, srv.Logger, "cloudflare")
			return
		}

		switch r.Method {
		case http.MethodGet:
			result, err := srv.Cloudflare.ListZones(r.Context(), r.URL.Query())
			if err != nil {
				respondUpstreamError(w, srv.Logger, "cloudflare", err)
				return
			}
			respondJSON(w, srv.Logger, result)
		default:
			respondMethodNotAllowed(w, srv.Logger)
		}
	})
}

// CloudflareZoneHandler handles /api/v1/cloudflare/zones/{zone}.
func CloudflareZoneHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.Cloudflare == nil {
			respondVendorDisabled(w, srv.Logger, "cloudflare")
			return
		}

		switch r.Method {
		case http.MethodGet:
			result, err := srv.Cloudflare.GetZone(r.Context(), r.PathValue("zone"))
			if err != nil {
				respondUpstreamError(w, srv.Logger, "cloudflare", err)
				return
			}
			respondJSON(w, srv.Logger, result)
		default:
			respondMethodNotAllowed(w, srv.Logger)
		}
	})
}

// CloudflareDNSHandler handles /api/v1/cloudflare/zones/{zone}/dns.
func CloudflareDNSHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.Cloudflare == nil {
			respondVendorDisabled(w, srv.Logger, "cloudflare")
			return
		}

		zone := r.PathValue("zone")

		switch r.Method {
		case http.MethodGet:
			result, err := srv.Cloudflare.ListDNSRecords(
				r.Context(), zone, r.URL.Query())
			if err != nil {
				respondUpstreamError(w, srv.Logger, "cloudflare", err)
				return
			}
			respondJSON(w, srv.Logger, result)

		case http.MethodPost:
			payload, err := readJSONBody(r)
			if err != nil {
				srv.Logger.Error("error reading dns record payload", "error", err)
				respondBodyError(w, srv.Logger, err)
				return
			}

			result, err := srv.Cloudflare.CreateDNSRecord(r.Context(), zone, payload)
			if err != nil {
				respondUpstreamError(w, srv.Logger, "cloudflare", err)
				return
			}
			respondJSON(w, srv.Logger, result)

		default:
			respondMethodNotAllowed(w, srv.Logger)
		}
	})
}

// CloudflareDNSRecordHandler handles
// /api/v1/cloudflare/zones/{zone}/dns/{record}.
func CloudflareDNSRecordHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.Cloudflare == nil {
			respondVendorDisabled(w, srv.Logger, "cloudflare")
			return
		}

		zone := r.PathValue("zone")
		record := r.PathValue("record")

		switch r.Method {
		case http.MethodPut:
			payload, err := readJSONBody(r)
			if err != nil {
				srv.Logger.Error("error reading dns record payload", "error", err)
				respondBodyError(w, srv.Logger, err)
				return
			}

			result, err := srv.Cloudflare.UpdateDNSRecord(
				r.Context(), zone, record, payload)
			if err != nil {
				respondUpstreamError(w, srv.Logger, "cloudflare", err)
				return
			}
			respondJSON(w, srv.Logger, result)

		case http.MethodDelete:
			result, err := srv.Cloudflare.DeleteDNSRecord(r.Context(), zone, record)
			if err != nil {
				respondUpstreamError(w, srv.Logger, "cloudflare", err)
				return
			}
			respondJSON(w, srv.Logger, result)

		default:
			respondMethodNotAllowed(w, srv.Logger)
		}
	})
}

// CloudflarePurgeHandler handles /api/v1/cloudflare/zones/{zone}/purge.
func CloudflarePurgeHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.Cloudflare == nil {
			respondVendorDisabled(w, srv.Logger, "cloudflare")
			return
		}

		if r.Method != http.MethodPost {
			respondMethodNotAllowed(w, srv.Logger)
			return
		}

		payload, err := readJSONBody(r)
		if err != nil {
			srv.Logger.Error("error reading purge payload", "error", err)
			respondBodyError(w, srv.Logger, err)
			return
		}

		result, err := srv.Cloudflare.PurgeCache(
			r.Context(), r.PathValue("zone"), payload)
		if err != nil {
			respondUpstreamError(w, srv.Logger, "cloudflare", err)
			return
		}
		respondJSON(w, srv.Logger, result)
	})
}
