package domain

import "testing"

func TestDecodificarCamposListaNativa(t *testing.T) {
	raw := []byte(`[{"clave":"silla_bebe","tipo":"SWITCH","conPrecio":true,"precio":20000}]`)

	campos := DecodificarCampos(raw)
	if len(campos) != 1 {
		t.Fatalf("esperaba 1 campo, got %d", len(campos))
	}
	if campos[0].Clave != "silla_bebe" || campos[0].Precio != 20000 {
		t.Fatalf("campo mal decodificado: %+v", campos[0])
	}
}

func TestDecodificarCamposDobleSerializacion(t *testing.T) {
	// La lista llega serializada como string dentro del JSON.
	raw := []byte(`"[{\"clave\":\"maletas\",\"tipo\":\"COUNTER\",\"conPrecio\":true,\"precio\":5000}]"`)

	campos := DecodificarCampos(raw)
	if len(campos) != 1 {
		t.Fatalf("esperaba 1 campo, got %d", len(campos))
	}
	if campos[0].Tipo != CampoCounter {
		t.Fatalf("tipo mal decodificado: %s", campos[0].Tipo)
	}
}

func TestDecodificarCamposIlegible(t *testing.T) {
	if campos := DecodificarCampos([]byte(`{{{no es json`)); campos != nil {
		t.Fatalf("una definición ilegible debe degradar a lista vacía, got %+v", campos)
	}
	if campos := DecodificarCampos(nil); campos != nil {
		t.Fatalf("sin definición no hay campos, got %+v", campos)
	}
}
